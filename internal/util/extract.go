package util

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractPDFText extracts text from a transcript PDF. Pages with an embedded
// text layer are read directly; scanned pages fall back to OCR via tesseract.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	log.Printf("Total pages: %d\n", doc.NumPage())

	var fullText bytes.Buffer
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err == nil && len(strings.TrimSpace(pageText)) > 0 {
			fullText.WriteString(strings.TrimSpace(pageText))
			fullText.WriteString("\n\n")
			continue
		}

		// Scanned page, try OCR
		ocrText, err := ocrPage(doc, n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			log.Println(lastErr)
			continue
		}
		if len(ocrText) > 0 {
			fullText.WriteString(ocrText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())

	if len(result) == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or images are unreadable)")
	} else if len(result) < 100 {
		return "", fmt.Errorf("content too short for a meaningful transcript")
	}

	log.Printf("Total extracted text: %d chars\n", len(result))
	return result, nil
}

// ocrPage renders one page to PNG and runs tesseract over it.
func ocrPage(doc *fitz.Document, n int) (string, error) {
	if err := checkTesseract(); err != nil {
		return "", fmt.Errorf("tesseract check failed: %w", err)
	}

	img, err := doc.Image(n)
	if err != nil {
		return "", fmt.Errorf("failed to extract image: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := savePNG(tmpPath, img); err != nil {
		return "", fmt.Errorf("failed to save PNG: %w", err)
	}

	cmd := exec.Command("tesseract", tmpPath, "stdout", "-l", "eng")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract error: %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

func checkTesseract() error {
	cmd := exec.Command("tesseract", "-v")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w\nOutput: %s", err, string(out))
	}
	return nil
}

func savePNG(path string, img interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	i, ok := img.(image.Image)
	if !ok {
		return fmt.Errorf("invalid image type: %T", img)
	}

	if err := png.Encode(f, i); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
