package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/splice/buffer"
	"github.com/dshills/splice/unescape"
)

// processFile loads a JSON array of strings, decodes every element inside
// the original file buffer, and returns a JSON report of the decoded values.
func processFile(path string, log *logrus.Logger) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: not valid JSON", path)
	}
	if !gjson.ParseBytes(data).IsArray() {
		return nil, fmt.Errorf("%s: top-level value is not an array", path)
	}

	// The file bytes become the buffer's storage; decoding rewrites them
	// in place and the values below are views into that same storage.
	buf, err := buffer.NewFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	values, err := unescape.Array(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"values": len(values),
		"bytes":  buf.Len(),
	}).Debug("decoded string array in place")

	return buildReport(path, buf, values)
}

// buildReport assembles the JSON report.
func buildReport(path string, buf *buffer.Buffer, values []string) ([]byte, error) {
	var decoded int
	for _, v := range values {
		decoded += len(v)
	}

	out := []byte(`{}`)
	for _, set := range []struct {
		path  string
		value any
	}{
		{"file", path},
		{"count", len(values)},
		{"decoded_bytes", decoded},
		{"buffer_bytes", buf.Len()},
		{"values", values},
	} {
		var err error
		out, err = sjson.SetBytes(out, set.path, set.value)
		if err != nil {
			return nil, fmt.Errorf("building report: %w", err)
		}
	}
	return out, nil
}

// writeReport writes the report to path, or stdout when path is empty.
func writeReport(report []byte, path string, prettify bool) error {
	if prettify {
		report = pretty.Pretty(report)
	} else {
		report = append(report, '\n')
	}

	if path == "" {
		_, err := os.Stdout.Write(report)
		return err
	}
	return os.WriteFile(path, report, 0o644)
}
