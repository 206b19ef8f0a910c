package echoapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
)

type pdfApi struct {
	extractor core.TextExtractor
}

func registerPDFAPI(g *echo.Group, deps *Deps) {
	api := pdfApi{extractor: deps.Extractor}

	pg := g.Group("/pdf")
	pg.POST("/extract", api.extract)
}

type extractResponse struct {
	Text string `json:"text"`
}

// extract proxies the document to the external text-extraction endpoint.
// The document may come as a multipart "file" part or as the raw body.
func (api *pdfApi) extract(ctx echo.Context) error {
	var doc io.Reader = ctx.Request().Body
	if fh, err := ctx.FormFile("file"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return errors.Wrap(err, "opening upload")
		}
		defer src.Close()
		doc = src
	}

	text, err := api.extractor.ExtractText(ctx.Request().Context(), doc)
	if err != nil {
		return errors.Wrap(err, "extracting text")
	}
	return ctx.JSON(http.StatusOK, extractResponse{Text: text})
}
