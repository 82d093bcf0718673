package store

import (
	"errors"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "plain json",
			input: `{"store_directory": "/mnt/black-library/store/"}`,
			want:  "/mnt/black-library/store/",
		},
		{
			name:  "extra keys ignored",
			input: `{"store_directory": "/srv/store", "log_level": 2}`,
			want:  "/srv/store",
		},
		{name: "missing key", input: `{}`, wantErr: ErrMissingStoreDirectory},
		{name: "empty value", input: `{"store_directory": ""}`, wantErr: ErrMissingStoreDirectory},
		{name: "null value", input: `{"store_directory": null}`, wantErr: ErrMissingStoreDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() unexpected error = %v", err)
			}
			if cfg.StoreDirectory != tt.want {
				t.Errorf("StoreDirectory = %q, want %q", cfg.StoreDirectory, tt.want)
			}
		})
	}

	t.Run("not strict json", func(t *testing.T) {
		inputs := map[string]string{
			"line comment":   "{\n // where items live\n \"store_directory\": \"/srv/store\"\n}",
			"trailing comma": `{"store_directory": "/srv/store",}`,
			"block comment":  `{/* store */ "store_directory": "/srv/store"}`,
			"truncated":      `{"store_directory": `,
		}
		for name, input := range inputs {
			cfg, err := ParseConfig([]byte(input))
			if err == nil {
				t.Errorf("%s: ParseConfig() = %+v, want an error", name, cfg)
			}
			if errors.Is(err, ErrMissingStoreDirectory) {
				t.Errorf("%s: got ErrMissingStoreDirectory, want a parse error", name)
			}
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		if _, err := ParseConfig([]byte(`{"store_directory": 5}`)); err == nil {
			t.Error("ParseConfig() expected an error for a numeric store_directory")
		}
	})
}
