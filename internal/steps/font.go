package steps

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akhil41/zsh-shell-customizer/internal/fsutil"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/platform"
)

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// newFontStep downloads and installs the MesloLGS Nerd Font. The archive is
// validated (type and size floor) before anything is extracted, so a
// truncated download never leaves partial files behind.
func newFontStep() Step {
	var copied []string
	return Step{
		Name:    messages.StepNameFont,
		Prompt:  messages.StepPromptFont,
		Default: false,
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			return fontInstalled(c.Paths.FontDir), nil
		},
		Action: func(ctx context.Context, c *Context) error {
			url := c.FontArchiveURL
			if url == "" {
				url = fontArchiveURL
			}
			archive, err := downloadFontArchive(ctx, url, c.Config.DownloadTimeout)
			if err != nil {
				return fmt.Errorf(messages.FontDownloadFailedFmt, err)
			}
			defer func() { _ = os.Remove(archive) }()

			if err := validateFontArchive(archive); err != nil {
				return err
			}

			installed, err := extractFonts(archive, c.Paths.FontDir)
			if err != nil {
				return err
			}
			if len(installed) == 0 {
				return errors.New(messages.FontArchiveNoFontFiles)
			}
			copied = installed

			if c.Platform.OS == platform.OSLinux {
				if err := c.Sys.Run(ctx, "fc-cache", "-f", c.Paths.FontDir); err != nil {
					c.Console.Warnf(messages.FontCacheRefreshWarnFmt, err)
				}
			}
			return nil
		},
		Verify: func(_ context.Context, c *Context) error {
			if !fontInstalled(c.Paths.FontDir) {
				return errors.New(messages.FontNotPresentAfterCopy)
			}
			return nil
		},
		Rollback: func(_ context.Context, c *Context) error {
			for _, path := range copied {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return err
				}
			}
			return nil
		},
	}
}

func fontInstalled(fontDir string) bool {
	matches, err := filepath.Glob(filepath.Join(fontDir, FontGlob))
	return err == nil && len(matches) > 0
}

// downloadFontArchive fetches url into a temp file. The HTTP client timeout
// bounds the whole transfer.
func downloadFontArchive(ctx context.Context, url string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(messages.FontDownloadStatusFmt, resp.Status)
	}

	tmp, err := os.CreateTemp("", "zshc-font-*.zip")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// validateFontArchive rejects short or non-zip downloads before extraction.
func validateFontArchive(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() < fontMinArchiveBytes {
		return fmt.Errorf(messages.FontArchiveTooSmallFmt, info.Size(), fontMinArchiveBytes)
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	magic := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(file, magic); err != nil {
		return errors.New(messages.FontArchiveNotZip)
	}
	if !bytes.Equal(magic, zipMagic) {
		return errors.New(messages.FontArchiveNotZip)
	}
	return nil
}

// extractFonts copies every font file from the archive into destDir,
// flattening any directory structure. Returns the installed paths.
func extractFonts(archivePath string, destDir string) ([]string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errors.New(messages.FontArchiveNotZip)
	}
	defer func() { _ = reader.Close() }()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, err
	}

	var installed []string
	for _, entry := range reader.File {
		name := filepath.Base(entry.Name)
		ext := strings.ToLower(filepath.Ext(name))
		if entry.FileInfo().IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}
		src, err := entry.Open()
		if err != nil {
			return installed, err
		}
		data, err := io.ReadAll(src)
		_ = src.Close()
		if err != nil {
			return installed, err
		}
		dst := filepath.Join(destDir, name)
		if err := fsutil.WriteFileAtomic(dst, data, 0o644); err != nil {
			return installed, err
		}
		installed = append(installed, dst)
	}
	return installed, nil
}
