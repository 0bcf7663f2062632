package api

type CapacityImageRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type CapacityImageResponse struct {
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	CapacityBits     int    `json:"capacity_bits"`
	MaxMessageLength int    `json:"max_message_length"`
	CapacityHuman    string `json:"capacity_human"`
}
