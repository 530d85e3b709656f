package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		want    Normalized
		wantErr string
	}{
		{
			name:  "full payload",
			input: Input{Name: "Ivy", Email: "ivy@example.com", Message: "Lovely trip!"},
			want:  Normalized{Name: "Ivy", Email: "ivy@example.com", Message: "Lovely trip!"},
		},
		{
			name:  "whitespace trimmed everywhere",
			input: Input{Name: "  Ivy  ", Email: " ivy@example.com ", Message: " hi "},
			want:  Normalized{Name: "Ivy", Email: "ivy@example.com", Message: "hi"},
		},
		{
			name:  "blank name becomes anonymous",
			input: Input{Name: "  ", Email: "", Message: " hi "},
			want:  Normalized{Name: AnonymousName, Email: "", Message: "hi"},
		},
		{
			name:  "email lower-cased",
			input: Input{Email: "Ivy@Example.COM", Message: "hi"},
			want:  Normalized{Name: AnonymousName, Email: "ivy@example.com", Message: "hi"},
		},
		{
			name:  "empty email allowed",
			input: Input{Name: "Ivy", Message: "hi"},
			want:  Normalized{Name: "Ivy", Email: "", Message: "hi"},
		},
		{
			name:    "missing message rejected",
			input:   Input{Name: "Ivy", Email: "ivy@example.com"},
			wantErr: "message required",
		},
		{
			name:    "whitespace-only message rejected",
			input:   Input{Message: "   \n\t "},
			wantErr: "message required",
		},
		{
			name:    "email without tld rejected",
			input:   Input{Email: "a@b", Message: "hi"},
			wantErr: "invalid email",
		},
		{
			name:    "email with spaces rejected",
			input:   Input{Email: "a b@c.com", Message: "hi"},
			wantErr: "invalid email",
		},
		{
			name:    "email without local part rejected",
			input:   Input{Email: "@b.com", Message: "hi"},
			wantErr: "invalid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateErrorField(t *testing.T) {
	_, err := Validate(Input{Email: "not-an-email", Message: "hi"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}
