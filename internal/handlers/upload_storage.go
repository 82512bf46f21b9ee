package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/zohir26/IC-sub001/internal/config"
)

const maxUploadSize = 10 << 20

var allowedUploadExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
}

func uploadRoot() string {
	if dir := strings.TrimSpace(config.AppEnv.UploadDir); dir != "" {
		return dir
	}
	return "./public"
}

// saveUpload writes the file under uploads/<subdir>/ with a generated unique
// filename and returns that filename plus the relative path stored in the
// record.
func saveUpload(file *multipart.FileHeader, subdir string) (string, string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", "", fmt.Errorf("file extension is required")
	}
	if _, ok := allowedUploadExtensions[extension]; !ok {
		return "", "", fmt.Errorf("unsupported file type: %s", extension)
	}
	if file.Size > maxUploadSize {
		return "", "", fmt.Errorf("file too large (max 10MB)")
	}

	filename := uuid.NewString() + extension

	dir := filepath.Join(uploadRoot(), "uploads", subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[UPLOAD] saveUpload: failed to create directory %s: %v", dir, err)
		return "", "", err
	}

	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[UPLOAD] saveUpload: failed to create file %s: %v", fullPath, err)
		return "", "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		log.Printf("[UPLOAD] saveUpload: failed to open upload %s: %v", file.Filename, err)
		return "", "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		log.Printf("[UPLOAD] saveUpload: failed to save file %s: %v", fullPath, err)
		return "", "", err
	}

	relPath := filepath.ToSlash(filepath.Join("uploads", subdir, filename))
	return filename, relPath, nil
}

// safeDeleteUpload removes an uploaded file, refusing anything that resolves
// outside the uploads tree. A file that is already gone is not an error.
func safeDeleteUpload(relPath string) error {
	trimmed := strings.TrimSpace(relPath)
	if trimmed == "" {
		return nil
	}

	cleanRel := path.Clean("/" + strings.TrimPrefix(trimmed, "/"))
	cleanRel = strings.TrimPrefix(cleanRel, "/")

	if !strings.HasPrefix(cleanRel, "uploads/") {
		return fmt.Errorf("refusing to delete non-upload path: %s", relPath)
	}

	cleanBase := filepath.Clean(uploadRoot())
	targetPath := filepath.Join(cleanBase, filepath.FromSlash(cleanRel))
	cleanTarget := filepath.Clean(targetPath)
	if cleanTarget != cleanBase && !strings.HasPrefix(cleanTarget, cleanBase+string(os.PathSeparator)) {
		return fmt.Errorf("refusing to delete path outside upload root: %s", relPath)
	}

	if err := os.Remove(cleanTarget); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return nil
}

// humanFileSize renders a byte count the way the admin UI displays it.
func humanFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}
