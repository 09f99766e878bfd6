package client

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// UploadTarget is the short-lived destination returned by the presign
// endpoint. UploadURL receives the binary, PublicURL is what gets
// stored on the lesson or payment afterwards.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

// RequestUploadURL asks the API for a short-lived upload target
func (c *Client) RequestUploadURL(fileName, fileType string) (*UploadTarget, error) {
	payload := map[string]string{
		"fileName": fileName,
		"fileType": fileType,
	}

	var out UploadTarget
	if err := c.do(http.MethodPost, "/courses/upload-url", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// progressReader reports upload progress as a monotonically increasing
// percentage while the transport drains it
type progressReader struct {
	reader io.Reader
	total  int64
	sent   int64
	last   int
	report func(percent int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	p.sent += int64(n)

	if p.report != nil && p.total > 0 {
		percent := int(p.sent * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent > p.last {
			p.last = percent
			p.report(percent)
		}
	}

	return n, err
}

// UploadBinary streams a file to a presigned upload URL with a direct
// PUT, outside the JSON request path. The progress callback runs from 0
// to 100; failure at any point fails the whole upload, there is no
// resume.
func (c *Client) UploadBinary(uploadURL, contentType string, body io.Reader, size int64, progress func(percent int)) error {
	if progress != nil {
		progress(0)
	}

	reader := &progressReader{reader: body, total: size, report: progress}

	req, err := http.NewRequest(http.MethodPut, uploadURL, reader)
	if err != nil {
		return &ApiError{Message: GenericErrorMessage, Transport: true}
	}
	req.ContentLength = size
	// Content-Type must match what the presign step promised; the
	// transport fills in nothing else.
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Binary upload failed")
		return &ApiError{Message: GenericErrorMessage, Transport: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ApiError{StatusCode: resp.StatusCode, Message: "فشل رفع الملف"}
	}

	if progress != nil && reader.last < 100 {
		progress(100)
	}

	return nil
}
