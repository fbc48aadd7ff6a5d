// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// ImageVersion is the current store-image snapshot format version.
const ImageVersion = 1

// StoreImage is the snapshot file format for a pendant message store:
// a small CBOR envelope around the raw store bytes. Integer keys keep the
// encoding compact enough to move over the link itself if needed.
type StoreImage struct {
	Version int    `cbor:"0,keyasint"`
	Size    int    `cbor:"1,keyasint"`
	Data    []byte `cbor:"2,keyasint"`
}

// SaveImage writes a store snapshot to path.
func SaveImage(path string, data []byte) error {
	img := StoreImage{Version: ImageVersion, Size: len(data), Data: data}
	raw, err := cbor.Marshal(img)
	if err != nil {
		return fmt.Errorf("failed to encode store image: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store image: %w", err)
	}
	return nil
}

// LoadImage reads a store snapshot from path and returns the store bytes.
func LoadImage(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store image: %w", err)
	}
	var img StoreImage
	if err := cbor.Unmarshal(raw, &img); err != nil {
		return nil, fmt.Errorf("failed to decode store image: %w", err)
	}
	if img.Version != ImageVersion {
		return nil, fmt.Errorf("unsupported store image version %d", img.Version)
	}
	if img.Size != len(img.Data) {
		return nil, fmt.Errorf("store image size mismatch: header %d, payload %d", img.Size, len(img.Data))
	}
	return img.Data, nil
}
