package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const avatarMaxDimension = 512

// UploadAvatarImage converts an uploaded image to webp (resized to fit
// 512x512) and stores it in the Supabase storage bucket. Returns the
// public URL saved on students.avatar_url.
func UploadAvatarImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// fit inside the avatar bounds, keep aspect ratio
	img = imaging.Fit(img, avatarMaxDimension, avatarMaxDimension, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	filename := generateUniqueFilename(folder, fileHeader.Filename)
	if err := uploadToStorage("image", filename, "image/webp", buf); err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("SUPABASE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func generateUniqueFilename(folder, original string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = filenameSanitizer.ReplaceAllString(base, "-")
	return fmt.Sprintf("%s/%d-%s-%s.webp", folder, time.Now().Unix(), uuid.NewString()[:8], base)
}

func uploadToStorage(bucket, filename, contentType string, body *bytes.Buffer) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("SUPABASE_PROJECT_URL"), bucket, filename)

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("SUPABASE_SERVICE_KEY"))
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage responded %d", resp.StatusCode)
	}
	return nil
}
