package llm

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a delta of the LLM's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption and cost; emitted once at stream end.
type UsageChunk struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	CostUSD          float64
	CacheHit         bool
}

// ErrorChunk signals a provider error mid-stream. It is always the last
// chunk before the channel closes.
type ErrorChunk struct {
	Message string
	Class   ErrorClass
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }

// CollectStream drains a chunk channel into a complete Response.
// Returns an error if an ErrorChunk is received.
func CollectStream(stream <-chan Chunk) (*Response, error) {
	return CollectStreamWithCallback(stream, nil)
}

// StreamCallback is called for each text delta during stream collection.
type StreamCallback func(delta string)

// CollectStreamWithCallback collects a stream while calling back for
// real-time delivery. The callback is optional (nil = buffered mode).
func CollectStreamWithCallback(stream <-chan Chunk, callback StreamCallback) (*Response, error) {
	resp := &Response{}
	var buf []byte

	for chunk := range stream {
		switch c := chunk.(type) {
		case *TextChunk:
			buf = append(buf, c.Content...)
			if callback != nil {
				callback(c.Content)
			}
		case *UsageChunk:
			resp.Usage = TokenUsage{
				PromptTokens:     c.PromptTokens,
				CompletionTokens: c.CompletionTokens,
				TotalTokens:      c.TotalTokens,
			}
			resp.CostUSD = c.CostUSD
			resp.CacheHit = c.CacheHit
		case *ErrorChunk:
			return nil, &Error{Class: c.Class, Message: c.Message}
		}
	}

	resp.Text = string(buf)
	return resp, nil
}
