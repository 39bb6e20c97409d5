package async

import "context"

type OptionKey string

const BufferOptionKey OptionKey = "buffer_options"

type BufferOptions struct {
	Size int
}

// WithBuffer sets the capacity of channels created by this package under ctx.
func WithBuffer(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{Size: size})
}

func GetBufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok && options.Size >= 0 {
		return options.Size
	}
	return defaultSize
}
