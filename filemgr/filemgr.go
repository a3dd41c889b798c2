package filemgr

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const attractionPicDir = "static/attractionpic"

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImageFileType checks the declared content type of an upload.
func ValidateImageFileType(header *multipart.FileHeader) bool {
	return supportedImageTypes[header.Header.Get("Content-Type")]
}

// SaveAttractionBanner stores the uploaded image under the attraction's id
// together with a 300px-wide thumbnail. Returns the banner path for the
// attraction record.
func SaveAttractionBanner(r *http.Request, attractionID string) (string, error) {
	file, header, err := r.FormFile("banner")
	if err != nil {
		return "", fmt.Errorf("missing banner file: %w", err)
	}
	defer file.Close()

	if !ValidateImageFileType(header) {
		return "", fmt.Errorf("unsupported image type %q", header.Header.Get("Content-Type"))
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(attractionPicDir, 0755); err != nil {
		return "", err
	}

	originalPath := filepath.Join(attractionPicDir, attractionID+".jpg")
	if err := imaging.Save(img, originalPath); err != nil {
		return "", fmt.Errorf("save banner: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	thumbPath := filepath.Join(attractionPicDir, attractionID+"_thumb.jpg")
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return "/" + originalPath, nil
}
