// response/parse_test.go
package response

import (
	"reflect"
	"testing"
)

func Test_parseHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantType   string
		wantParams map[string]string
	}{
		{
			name:       "Basic",
			header:     "text/html; charset=UTF-8",
			wantType:   "text/html",
			wantParams: map[string]string{"charset": "UTF-8"},
		},
		{
			name:       "No Params",
			header:     "application/json",
			wantType:   "application/json",
			wantParams: map[string]string{},
		},
		{
			name:       "Multiple Params",
			header:     "multipart/form-data; boundary=something; charset=utf-8",
			wantType:   "multipart/form-data",
			wantParams: map[string]string{"boundary": "something", "charset": "utf-8"},
		},
		{
			name:       "Attachment with Filename",
			header:     "attachment; filename=\"receipt.jpg\"",
			wantType:   "attachment",
			wantParams: map[string]string{"filename": "receipt.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotParams := parseHeader(tt.header)
			if gotType != tt.wantType {
				t.Errorf("parseHeader() gotType = %v, want %v", gotType, tt.wantType)
			}
			if !reflect.DeepEqual(gotParams, tt.wantParams) {
				t.Errorf("parseHeader() gotParams = %v, want %v", gotParams, tt.wantParams)
			}
		})
	}
}
