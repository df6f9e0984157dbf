package input

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Stdin is the path that makes FileSource read from standard input.
const Stdin = "-"

type FileSource struct {
	stdin  io.Reader
	logger *zerolog.Logger
}

func NewFileSource(stdin io.Reader, logger *zerolog.Logger) *FileSource {
	return &FileSource{
		stdin:  stdin,
		logger: logger,
	}
}

// Read loads the whole puzzle input into memory.
func (s *FileSource) Read(path string) (string, error) {
	if path == Stdin {
		s.logger.Debug().Msg("Reading input from stdin")
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", fmt.Errorf("read input from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file %s: %w", path, err)
	}

	s.logger.Debug().Str("file", path).Int("bytes", len(data)).Msg("Input file loaded")
	return string(data), nil
}
