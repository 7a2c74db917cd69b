package raster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/labscan/log"
)

// Embedded extracts the scanned image of each PDF page.
//
// When a page holds several images the largest one is taken as the page
// scan. Pages without a decodable image are skipped; if no page yields an
// image the document fails with ErrNoPageImages.
type Embedded struct{}

// Rasterize extracts one image per page from the PDF at path.
func (Embedded) Rasterize(ctx context.Context, path string) ([]Page, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), conf)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("read PDF: %w", err)}
	}

	var pages []Page
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		images, err := pdfcpu.ExtractPageImages(pdfCtx, pageNr, false)
		if err != nil {
			log.Debugf("page %d: extract images: %v", pageNr, err)
			continue
		}

		page, ok := largestImage(pageNr, images)
		if !ok {
			log.Debugf("page %d: no decodable image", pageNr)
			continue
		}
		pages = append(pages, page)
	}

	if len(pages) == 0 {
		return nil, &Error{Path: path, Err: ErrNoPageImages}
	}
	return pages, nil
}

func largestImage(pageNr int, images map[int]model.Image) (Page, bool) {
	var (
		best  Page
		found bool
	)
	for _, img := range images {
		if img.Reader == nil {
			continue
		}
		data, err := io.ReadAll(img.Reader)
		if err != nil || len(data) == 0 {
			continue
		}
		page, err := decodePage(pageNr, data)
		if err != nil {
			log.Debugf("page %d: skip %s image: %v", pageNr, img.FileType, err)
			continue
		}
		if !found || page.Width*page.Height > best.Width*best.Height {
			best, found = page, true
		}
	}
	return best, found
}
