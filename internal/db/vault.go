//    EnquiryAnalysisServer
//    Copyright: T Mercer 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/t-mercer/EnquiryAnalysisServer/internal/vv"
)

//
// FILE VAULT: model artifacts are gzipped JSON on disk; the store holds only run metadata
//

const (
	VAULTDIR = "eas-vault"
	VAULTEXT = ".json.gz"
)

// VaultPath - where an artifact with this name lives
func VaultPath(name string) string {
	return filepath.Join(VAULTDIR, name+VAULTEXT)
}

// VaultStore - marshal, compress, write
func VaultStore(name string, artifact any) error {
	const (
		MSG1 = "VaultStore(): wrote '%s'"
		GZ   = gzip.BestSpeed
	)

	if e := os.MkdirAll(VAULTDIR, os.FileMode(0755)); e != nil {
		return e
	}

	eb, err := json.Marshal(artifact)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	if err != nil {
		return err
	}
	if _, err = zw.Write(eb); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	if err = os.WriteFile(VaultPath(name), buf.Bytes(), vv.WRITEPERMS); err != nil {
		return err
	}

	Msg.TMI(fmt.Sprintf(MSG1, VaultPath(name)))
	return nil
}

// VaultFetch - read, decompress, unmarshal into the supplied pointer
func VaultFetch(name string, artifact any) error {
	b, err := os.ReadFile(VaultPath(name))
	if err != nil {
		return err
	}

	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return err
	}
	decompr, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	if err = zr.Close(); err != nil {
		return err
	}

	return json.Unmarshal(decompr, artifact)
}

// VaultHas - is there an artifact by this name?
func VaultHas(name string) bool {
	_, err := os.Stat(VaultPath(name))
	return err == nil
}
