package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"familytree/internal/delivery/api/router/handler"
	"familytree/internal/delivery/api/validator"
	"familytree/internal/errors"
)

// loadImportFile reads and validates an import file the same way the server does.
func loadImportFile(w io.Writer, path string) (*handler.ImportRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var req handler.ImportRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	req.Normalize()

	if err := validator.New().Validate(&req); err != nil {
		fields := validator.FieldErrors(err)
		if fields == nil {
			return nil, errors.WithStack(err)
		}
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  ❌ %s: %s\n", name, fields[name])
		}

		return nil, errors.Errorf("%d invalid field(s) in %s", len(fields), path)
	}

	fmt.Fprintf(w, "✅ %d record(s) in %s are valid\n", len(req.Records), path)

	return &req, nil
}

func runImport(ctx context.Context, w io.Writer, flags importFlags) error {
	req, err := loadImportFile(w, *flags.file)
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return errors.WithStack(err)
	}

	var result struct {
		Data struct {
			Imported int `json:"imported"`
		} `json:"data"`
	}
	if err := call(ctx, http.MethodPost, *flags.server+"/admin/people/import", *flags.token, body, &result); err != nil {
		return err
	}

	fmt.Fprintf(w, "✅ Imported %d record(s)\n", result.Data.Imported)

	return nil
}

func runAudit(ctx context.Context, w io.Writer, flags auditFlags) error {
	var result struct {
		Data []struct {
			PersonID string `json:"personId"`
			Kind     string `json:"kind"`
			Detail   string `json:"detail"`
		} `json:"data"`
	}
	if err := call(ctx, http.MethodGet, *flags.server+"/admin/integrity", *flags.token, nil, &result); err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Fprintln(w, "✅ No integrity violations")

		return nil
	}
	for _, v := range result.Data {
		fmt.Fprintf(w, "  ❌ %s %s: %s\n", v.PersonID, v.Kind, v.Detail)
	}

	return errors.Errorf("%d integrity violation(s)", len(result.Data))
}

// call sends an authenticated request and decodes the JSON envelope into out.
func call(ctx context.Context, method, url, token string, body []byte, out any) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("a bearer token is required, use -token or FAMILYTREE_TOKEN")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
				Details any    `json:"details"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Error.Code != "" {
			return errors.Errorf("%s: %s (%v)", failure.Error.Code, failure.Error.Message, failure.Error.Details)
		}

		return errors.Errorf("%s %s returned %d", method, url, resp.StatusCode)
	}

	return errors.Wrap(json.Unmarshal(raw, out), "decode response")
}
