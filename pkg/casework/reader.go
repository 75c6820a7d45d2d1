// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// ReadTextFile returns the text content of path. Files are read as UTF-8
// first; byte sequences that are not valid UTF-8 are decoded as GBK. Every
// failure mode is converted into a bracketed placeholder string so that a
// bad file flows into the prompt as literal text instead of aborting the
// pipeline.
func ReadTextFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[读取文件错误: %s - %v]", filepath.Base(path), err)
	}
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return fmt.Sprintf("[无法读取文件: %s]", filepath.Base(path))
	}
	return string(decoded)
}
