package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	base := flag.String("base", "http://localhost:8080", "Base URL of a running sentiment API")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}
	target := strings.TrimRight(*base, "/")

	check(client, http.MethodGet, target+"/health", "")
	check(client, http.MethodPost, target+"/analyze", `{"text":"This is a wonderful product! I love it so much."}`)
	check(client, http.MethodPost, target+"/analyze-batch", `{"texts":["This is a wonderful product! I love it so much.","This is terrible. I hate it.","It's okay, nothing special but not bad either."]}`)
}

func check(client *http.Client, method, url, body string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		exitErr(fmt.Sprintf("build request: %v", err))
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		exitErr(fmt.Sprintf("%s %s: %v", method, url, err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		exitErr(fmt.Sprintf("read response: %v", err))
	}

	pretty, err := prettyJSON(payload)
	if err != nil {
		exitErr(fmt.Sprintf("format json from %s: %v", url, err))
	}

	fmt.Printf("%s %s -> %d\n", method, url, resp.StatusCode)
	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	fmt.Println()
}

func prettyJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
