package employeeshandler

import (
	"bytes"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const thumbSize = 256

var photoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

func isPhoto(fileName string) bool {
	return photoExt[strings.ToLower(path.Ext(fileName))]
}

// makeThumbnail уменьшенная копия фото в jpeg, не больше thumbSize по каждой стороне
func makeThumbnail(body []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "не удалось прочитать изображение")
	}
	thumb := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err = imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения миниатюры")
	}
	return buf.Bytes(), nil
}
