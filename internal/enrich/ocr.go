package enrich

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// OCRResult is the recognized text for an image clip. Available is false
// when OCR is not configured or the call failed.
type OCRResult struct {
	Path      string `json:"path"`
	Text      string `json:"text"`
	Available bool   `json:"available"`
}

// OCR extracts text from an on-disk image through an OpenAI-compatible
// vision endpoint, memoized per path. It is opt-in: without a configured
// vision client the result is immediately unavailable.
func (e *Enricher) OCR(ctx context.Context, imagePath string) OCRResult {
	v := e.memo.do(keyFrom("ocr", imagePath), func() any {
		if e.vision == nil {
			return OCRResult{Path: imagePath}
		}
		text, err := e.recognize(ctx, imagePath)
		if err != nil {
			log.Warn().Err(err).Str("path", imagePath).Msg("ocr failed")
			return OCRResult{Path: imagePath}
		}
		return OCRResult{Path: imagePath, Text: text, Available: true}
	})
	return v.(OCRResult)
}

func (e *Enricher) recognize(ctx context.Context, imagePath string) (string, error) {
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	resp, err := e.vision.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: "Transcribe all text visible in this image. Reply with the text only."},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
			},
		}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
