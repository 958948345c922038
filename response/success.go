// response/success.go
/* Responsible for handling successful API responses. It reads the response body, logs the raw response details,
and unmarshals the response based on the content type. */
package response

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-mondo/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"go.uber.org/zap"
)

// contentHandler defines the signature for unmarshaling content from an io.Reader.
type contentHandler func(io.Reader, any, logger.Logger, string) error

// responseUnmarshallers maps MIME types to the corresponding contentHandler functions.
var responseUnmarshallers = map[string]contentHandler{
	"application/json": handlerUnmarshalJSON,
	"application/xml":  handlerUnmarshalXML,
	"text/xml":         handlerUnmarshalXML,
}

// HandleAPISuccessResponse reads the response body, logs it, and unmarshals it into out based on the content type.
// A nil out or an empty body (e.g. a DELETE answered with 204) is not an error. Credentials in the
// logged body are redacted when hideSensitiveData is set.
func HandleAPISuccessResponse(resp *http.Response, out any, log logger.Logger, hideSensitiveData bool) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return log.Error("Failed to read response body", zap.Error(err))
	}

	log.Debug("Raw HTTP Response", zap.String("Body", redact.RedactSensitiveJSON(hideSensitiveData, bodyBytes)))

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	bodyReader := bytes.NewReader(bodyBytes)
	contentType := resp.Header.Get("Content-Type")
	contentDisposition := resp.Header.Get("Content-Disposition")

	contentTypeNoParams, _ := parseHeader(contentType)

	if handler, ok := responseUnmarshallers[contentTypeNoParams]; ok {
		return handler(bodyReader, out, log, contentType)
	}

	if isBinaryData(contentType, contentDisposition) {
		return handleBinaryData(bodyReader, log, out, contentDisposition)
	}

	// Some gateways drop the Content-Type header; the Mondo API only ever answers with JSON.
	if contentType == "" && json.Valid(bodyBytes) {
		return handlerUnmarshalJSON(bodyReader, out, log, contentType)
	}

	errMsg := fmt.Sprintf("unexpected MIME type: %s", contentType)
	log.Error("Unmarshal error", zap.String("content type", contentType))
	return errors.New(errMsg)
}

// handlerUnmarshalJSON unmarshals JSON content from an io.Reader into the provided output structure.
func handlerUnmarshalJSON(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(out); err != nil {
		log.Error("JSON Unmarshal error", zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled JSON response", zap.String("content type", mimeType))
	return nil
}

// handlerUnmarshalXML unmarshals XML content from an io.Reader into the provided output structure.
func handlerUnmarshalXML(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	decoder := xml.NewDecoder(reader)
	if err := decoder.Decode(out); err != nil {
		log.Error("XML Unmarshal error", zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled XML response", zap.String("content type", mimeType))
	return nil
}

// isBinaryData checks if the MIME type or Content-Disposition indicates binary data.
func isBinaryData(contentType, contentDisposition string) bool {
	return strings.Contains(contentType, "application/octet-stream") || strings.HasPrefix(contentDisposition, "attachment")
}

// handleBinaryData reads binary data from an io.Reader and stores it in *[]byte or streams it to an io.Writer.
func handleBinaryData(reader io.Reader, log logger.Logger, out any, contentDisposition string) error {
	switch out := out.(type) {
	case *[]byte:
		data, err := io.ReadAll(reader)
		if err != nil {
			return log.Error("Failed to read binary data", zap.Error(err))
		}
		*out = data

	case io.Writer:
		if _, err := io.Copy(out, reader); err != nil {
			return log.Error("Failed to stream binary data to io.Writer", zap.Error(err))
		}

	default:
		return errors.New("output parameter is not suitable for binary data (*[]byte or io.Writer)")
	}

	if contentDisposition != "" {
		_, params := parseHeader(contentDisposition)
		if filename, ok := params["filename"]; ok {
			log.Debug("Extracted filename from Content-Disposition", zap.String("filename", filename))
		}
	}

	return nil
}
