package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/histo/errs"
)

type (
	Mode        uint8
	Compression uint8
)

const (
	ModeAuto     Mode = 0x1 // ModeAuto selects numeric or category mode from the input.
	ModeNumeric  Mode = 0x2 // ModeNumeric bins parsed numeric samples.
	ModeCategory Mode = 0x3 // ModeCategory counts identical tokens instead of binning.

	CompressionNone Compression = 0x1 // CompressionNone reads the input as-is.
	CompressionGzip Compression = 0x2 // CompressionGzip reads gzip-compressed input.
	CompressionZstd Compression = 0x3 // CompressionZstd reads Zstandard-compressed input.
	CompressionS2   Compression = 0x4 // CompressionS2 reads S2-compressed input.
	CompressionLZ4  Compression = 0x5 // CompressionLZ4 reads LZ4-compressed input.
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "Auto"
	case ModeNumeric:
		return "Numeric"
	case ModeCategory:
		return "Category"
	default:
		return "Unknown"
	}
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the mode as its lowercase name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strings.ToLower(m.String()) + `"`), nil
}

// UnmarshalJSON decodes a mode from its name, accepting the same aliases
// as ParseMode.
func (m *Mode) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	mode, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = mode

	return nil
}

// ParseMode converts a mode name into a Mode value. Names are matched
// case-insensitively. Returns ErrUnknownMode for anything unrecognized.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return ModeAuto, nil
	case "numeric", "number", "num":
		return ModeNumeric, nil
	case "category", "categorical", "cat":
		return ModeCategory, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownMode, name)
	}
}
