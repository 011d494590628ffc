package system

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/starmaze/logger"
)

var (
	fontsOnce   sync.Once
	regularFont *text.GoTextFaceSource
	boldFont    *text.GoTextFaceSource
)

func loadFonts() {
	fontsOnce.Do(func() {
		var err error
		if regularFont, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
			logger.For("render").WithError(err).Error("load regular font")
		}
		if boldFont, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
			logger.For("render").WithError(err).Error("load bold font")
		}
	})
}

func regularFace(size float64) *text.GoTextFace {
	loadFonts()
	if regularFont == nil {
		return nil
	}
	return &text.GoTextFace{Source: regularFont, Size: size}
}

func boldFace(size float64) *text.GoTextFace {
	loadFonts()
	if boldFont == nil {
		return regularFace(size)
	}
	return &text.GoTextFace{Source: boldFont, Size: size}
}
