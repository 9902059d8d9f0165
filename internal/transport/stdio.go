package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// maxScanTokenSize is the maximum size of a single inbound message line.
	maxScanTokenSize = 1024 * 1024 // 1MB

	initialScanBufferSize = 64 * 1024
)

// MessageHandler answers one raw message. It returns false when no reply
// must be written.
type MessageHandler interface {
	HandleMessage(ctx context.Context, raw string) (string, bool)
}

// HandlerFunc adapts a function to MessageHandler.
type HandlerFunc func(ctx context.Context, raw string) (string, bool)

// HandleMessage calls f(ctx, raw).
func (f HandlerFunc) HandleMessage(ctx context.Context, raw string) (string, bool) {
	return f(ctx, raw)
}

// Serve reads newline-delimited messages from r, passes each to h and writes
// every reply to w followed by a newline.
//
// Messages are handled one at a time in arrival order. Blank lines are
// skipped. Serve returns nil when r reaches EOF or ctx is cancelled, and the
// read or write error otherwise.
func Serve(ctx context.Context, log *slog.Logger, r io.Reader, w io.Writer, h MessageHandler) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "stdio_transport")

	log.Debug("Serving stdio transport")
	defer log.Debug("Stdio transport stopped")

	g, gCtx := errgroup.WithContext(ctx)

	lines, readErrs := readLines(gCtx, log, r)
	replies := make(chan string)

	g.Go(func() error {
		defer close(replies)

		messageCount := 0

		for {
			select {
			case <-gCtx.Done():
				log.Debug("Context cancelled, stopping message loop", "error", gCtx.Err())

				return nil

			case line, ok := <-lines:
				if !ok {
					return <-readErrs
				}

				messageCount++
				log.Debug("Received message", "message_count", messageCount, "data_len", len(line))

				reply, ok := h.HandleMessage(gCtx, line)
				if !ok {
					continue
				}

				select {
				case replies <- reply:
				case <-gCtx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		for reply := range replies {
			if _, err := io.WriteString(w, reply+"\n"); err != nil {
				log.Error("Failed to write reply", "error", err)

				return fmt.Errorf("write reply: %w", err)
			}
		}

		return nil
	})

	return g.Wait()
}

// readLines scans r in its own goroutine so a blocked read never holds up
// cancellation. The error channel carries at most one scanner error and is
// closed before the line channel.
func readLines(ctx context.Context, log *slog.Logger, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		defer close(errs)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, initialScanBufferSize), maxScanTokenSize)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Error("Scanner error while reading input", "error", err)

			errs <- fmt.Errorf("read message: %w", err)

			return
		}

		log.Debug("Input closed")
	}()

	return lines, errs
}
