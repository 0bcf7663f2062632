package server

import (
	"tsteg/pkg/model"

	"github.com/dustin/go-humanize"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	SetupHuman               string `json:"setup_human"`
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	CapacityUsed             string `json:"capacity_used"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	BitsScannedHuman  string `json:"bits_scanned_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	var capacityUsed float64
	if encodeStats.CapacityBits > 0 {
		capacityUsed = 100 * float64(encodeStats.BitsEmbedded) / float64(encodeStats.CapacityBits)
	}
	return humanizedEncodeStats{
		EncodeStats:              encodeStats,
		SetupHuman:               encodeStats.Setup.String(),
		DataEncodingHuman:        encodeStats.DataEncoding.String(),
		OutputImageEncodingHuman: encodeStats.OutputImageEncoding.String(),
		CapacityUsed:             humanize.FtoaWithDigits(capacityUsed, 2) + "%",
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
		BitsScannedHuman:  humanize.Comma(int64(decodeStats.BitsScanned)),
	}
}
