package api

type Error struct {
	Code          string `json:"code,omitempty"`
	Error         string `json:"error"`
	RequiredBits  int    `json:"required_bits,omitempty"`
	AvailableBits int    `json:"available_bits,omitempty"`
}
