package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSinkOptions configures a rolling log file sink.
type FileSinkOptions struct {
	// Path is the log file location. The parent directory is created if
	// missing.
	Path string
	// MinSeverity drops records below this level.
	MinSeverity Severity
	// MaxSizeMB is the size a file may reach before rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is the number of days to retain rotated files.
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

// FileSink writes zerolog JSON lines to a rolling log file backed by
// lumberjack. Rotation, retention and compression follow the options the
// sink was built with. Closing the sink closes the underlying file.
type FileSink struct {
	*WriterSink
	out *lumberjack.Logger
}

// NewFileSink returns a rolling file sink. The parent directory of
// opts.Path is created when missing; the file itself is created lazily on
// first write.
func NewFileSink(opts FileSinkOptions) (*FileSink, error) {
	if opts.Path == emptyString {
		return nil, errors.New(errMsgNoLogFilePath)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "failed to create logs directory")
	}

	out := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		MaxSize:    opts.MaxSizeMB,
		Compress:   opts.Compress,
	}

	return &FileSink{
		WriterSink: NewWriterSink(out, opts.MinSeverity),
		out:        out,
	}, nil
}

// Close implements io.Closer, closing the current log file. Safe to call
// multiple times.
func (s *FileSink) Close() error {
	if s == nil || s.out == nil {
		return nil
	}
	return s.out.Close()
}
