package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudinaryImageURL(t *testing.T) {
	tests := []struct {
		name     string
		publicID string
		opts     *CloudinaryImageOptions
		want     string
	}{
		{
			name:     "no options",
			publicID: "sample.jpg",
			opts:     nil,
			want:     "https://res.cloudinary.com/demo/image/upload/sample.jpg",
		},
		{
			name:     "empty options",
			publicID: "sample.jpg",
			opts:     &CloudinaryImageOptions{},
			want:     "https://res.cloudinary.com/demo/image/upload/sample.jpg",
		},
		{
			name:     "all options",
			publicID: "sample.jpg",
			opts:     &CloudinaryImageOptions{Width: 800, Height: 600, Crop: "fill", Quality: 80, Format: "webp"},
			want:     "https://res.cloudinary.com/demo/image/upload/w_800,h_600,c_fill,q_80,f_webp/sample.jpg",
		},
		{
			name:     "width only",
			publicID: "covers/kyoto.jpg",
			opts:     &CloudinaryImageOptions{Width: 400},
			want:     "https://res.cloudinary.com/demo/image/upload/w_400/covers/kyoto.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CloudinaryImageURL("demo", tt.publicID, tt.opts))
		})
	}
}

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"versioned url", "https://res.cloudinary.com/demo/image/upload/v12345/kyoto.jpg", "kyoto"},
		{"transformed url", "https://res.cloudinary.com/demo/image/upload/w_800,q_auto/v1/kyoto.png", "kyoto"},
		{"uppercase extension", "https://res.cloudinary.com/demo/image/upload/v1/kyoto.JPG", "kyoto"},
		{"not cloudinary", "https://example.com/kyoto.jpg", ""},
		{"no extension", "https://res.cloudinary.com/demo/image/upload/v1/kyoto", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPublicID(tt.url))
		})
	}
}

func TestConvertURLToWebFormat(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "heic gets format injection",
			url:  "https://res.cloudinary.com/demo/image/upload/v12345/kyoto.heic",
			want: "https://res.cloudinary.com/demo/image/upload/f_jpg,q_auto/v12345/kyoto.heic",
		},
		{
			name: "uppercase heic",
			url:  "https://res.cloudinary.com/demo/image/upload/v12345/kyoto.HEIC",
			want: "https://res.cloudinary.com/demo/image/upload/f_jpg,q_auto/v12345/kyoto.HEIC",
		},
		{
			name: "jpeg passes through",
			url:  "https://res.cloudinary.com/demo/image/upload/v12345/kyoto.jpg",
			want: "https://res.cloudinary.com/demo/image/upload/v12345/kyoto.jpg",
		},
		{
			name: "heic outside cloudinary passes through",
			url:  "https://example.com/photos/kyoto.heic",
			want: "https://example.com/photos/kyoto.heic",
		},
		{
			name: "empty string",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertURLToWebFormat(tt.url))
		})
	}
}
