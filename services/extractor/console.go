package extractorsvc

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/trezcool/ratiba/core"
)

// consoleService stands in for the real extraction endpoint in DEV/TEST: it
// drains the document and reports its size instead of extracting anything.
type consoleService struct {
	disableOutput bool
}

var _ core.TextExtractor = (*consoleService)(nil)

func NewConsoleService() core.TextExtractor {
	return &consoleService{}
}

func NewConsoleServiceMock() core.TextExtractor {
	return &consoleService{disableOutput: true}
}

func (svc consoleService) ExtractText(_ context.Context, doc io.Reader) (string, error) {
	n, err := io.Copy(io.Discard, doc)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("[%d bytes of PDF content]", n)
	if !svc.disableOutput {
		log.Println("extractorsvc:", text)
	}
	return text, nil
}
