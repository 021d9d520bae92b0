package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wazap-ai/wazap-go/internal/cliconfig"
)

type captured struct {
	path   string
	header http.Header
	body   map[string]any
}

func runCLI(t *testing.T, response string, args ...string) (string, *captured, error) {
	t.Helper()

	for _, k := range []string{"WAZAP_COMPANY_TOKEN", "WAZAP_ACCOUNT_TOKEN", "WAZAP_BASE_URL", "WAZAP_TIMEOUT", "WAZAP_VERBOSE"} {
		t.Setenv(k, "")
	}

	var got captured
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got.path = r.URL.Path
		got.header = r.Header.Clone()
		_ = json.Unmarshal(raw, &got.body)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	var out bytes.Buffer
	a := &app{cfg: cliconfig.DefaultConfig(), log: cliconfig.Logger(false), out: &out}
	root := newRootCmd(a)
	root.SetArgs(append([]string{
		"--config", filepath.Join(dir, "none.toml"),
		"--env-file", filepath.Join(dir, "none.env"),
		"--company-token", "c",
		"--account-token", "a",
		"--base-url", ts.URL,
	}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	return out.String(), &got, err
}

func TestSendCommand(t *testing.T) {
	resp := `{"success":true,"message":"ok","data":{"uuid":"u1","messageId":"m1","to":"5511999999999","status":"queued","timestamp":"2024-01-01T00:00:00Z"}}`
	out, got, err := runCLI(t, resp, "send", "--to", "5511999999999", "-m", "hello", "--email", "a@example.com")
	if err != nil {
		t.Fatalf("send error = %v", err)
	}

	if got.path != "/messages/send" {
		t.Errorf("path = %s", got.path)
	}
	if got.header.Get("X-Company-Token") != "c" || got.header.Get("X-Account-Token") != "a" {
		t.Errorf("tokens = %q/%q", got.header.Get("X-Company-Token"), got.header.Get("X-Account-Token"))
	}
	if got.body["message"] != "hello" || got.body["email"] != "a@example.com" {
		t.Errorf("body = %v", got.body)
	}
	if !strings.Contains(out, `"messageId": "m1"`) {
		t.Errorf("output = %s, want result JSON", out)
	}
}

func TestSendMediaCommand(t *testing.T) {
	resp := `{"success":true,"message":"ok","data":{"uuid":"u1","messageId":"m1","to":"5511999999999","status":"queued","timestamp":"t"}}`
	_, got, err := runCLI(t, resp, "send-media", "--to", "5511999999999", "--media-url", "https://cdn.example.com/a.png", "--mime-type", "image/png")
	if err != nil {
		t.Fatalf("send-media error = %v", err)
	}
	if got.path != "/messages/send-media" {
		t.Errorf("path = %s", got.path)
	}
	if got.body["mediaUrl"] != "https://cdn.example.com/a.png" || got.body["mimeType"] != "image/png" {
		t.Errorf("body = %v", got.body)
	}
}

func TestSendBulkCommand(t *testing.T) {
	resp := `{"success":true,"message":"ok","data":{"batchUuid":"b1","summary":{"total":3,"success":3,"failed":0,"invalid":0},"results":[]}}`

	dir := t.TempDir()
	contactsFile := filepath.Join(dir, "contacts.json")
	if err := os.WriteFile(contactsFile, []byte(`[{"phone":"5511777777777","full_name":"Ana"}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("randomize defaults to true", func(t *testing.T) {
		_, got, err := runCLI(t, resp, "send-bulk", "--to", "5511999999999", "--to", "5511888888888", "--contacts-file", contactsFile, "-m", "hi")
		if err != nil {
			t.Fatalf("send-bulk error = %v", err)
		}
		if got.body["randomize"] != true {
			t.Errorf("randomize = %v, want true", got.body["randomize"])
		}
		contacts, _ := got.body["contacts"].([]any)
		if len(contacts) != 3 {
			t.Fatalf("contacts = %v, want 3 entries", got.body["contacts"])
		}
		if rec, ok := contacts[2].(map[string]any); !ok || rec["full_name"] != "Ana" {
			t.Errorf("contacts[2] = %v, want record from file", contacts[2])
		}
	})

	t.Run("no-randomize", func(t *testing.T) {
		_, got, err := runCLI(t, resp, "send-bulk", "--to", "5511999999999", "-m", "hi", "--no-randomize")
		if err != nil {
			t.Fatalf("send-bulk error = %v", err)
		}
		if got.body["randomize"] != false {
			t.Errorf("randomize = %v, want false", got.body["randomize"])
		}
	})
}

func TestSendCommand_ValidationError(t *testing.T) {
	_, got, err := runCLI(t, `{}`, "send", "--to", "0123", "-m", "hi")
	if err == nil || !strings.Contains(err.Error(), "to:") {
		t.Errorf("error = %v, want validation error naming the field", err)
	}
	if got.path != "" {
		t.Errorf("request sent to %s despite invalid input", got.path)
	}
}

func TestMissingCredentials(t *testing.T) {
	for _, k := range []string{"WAZAP_COMPANY_TOKEN", "WAZAP_ACCOUNT_TOKEN"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	a := &app{cfg: cliconfig.DefaultConfig(), log: cliconfig.Logger(false), out: io.Discard}
	root := newRootCmd(a)
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "none.toml"),
		"--env-file", filepath.Join(dir, "none.env"),
		"send", "--to", "5511999999999", "-m", "hi",
	})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "company-token") {
		t.Errorf("error = %v, want missing company-token", err)
	}
}
