package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/common/promslog"
)

// newLogger builds a logfmt logger at the given level writing to w.
// Protocol traffic owns stdout, so w is normally stderr.
func newLogger(w io.Writer, levelStr string) (*slog.Logger, error) {
	level := promslog.NewLevel()
	if err := level.Set(levelStr); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	format := promslog.NewFormat()
	if err := format.Set("logfmt"); err != nil {
		return nil, err
	}

	return promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
		Writer: w,
	}), nil
}
