// Command httpdump parses an HTTP/1.x message or a parameter string and prints it as JSON.
//
// Usage:
//
//	httpdump [-mode request|response|params] [-merge] [file]
//
// If file is omitted, the input is read from stdin. Input lines may be terminated by LF
// only, as the parser tolerates it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/indigo-web/httpfast/config"
	"github.com/indigo-web/httpfast/message"
	"github.com/indigo-web/httpfast/parser/params"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type dump struct {
	Type       string   `json:"type"`
	Method     string   `json:"method,omitempty"`
	Path       string   `json:"path,omitempty"`
	Query      string   `json:"query,omitempty"`
	StatusCode uint     `json:"statusCode,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Version    string   `json:"version"`
	Headers    []pair   `json:"headers"`
	Params     []pair   `json:"params,omitempty"`
	Body       string   `json:"body"`
	Warnings   []string `json:"warnings,omitempty"`
}

var errUnknownMode = errors.New("unknown mode")

func main() {
	log.SetFlags(0)
	log.SetPrefix("httpdump: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("httpdump", flag.ContinueOnError)
	mode := fs.String("mode", "request", "what the input is: request, response or params")
	merge := fs.Bool("merge", false, "merge repeated headers into a single one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := stdin
	if fs.NArg() > 0 {
		file, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}

		defer file.Close()
		input = file
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Headers.MergeRepeated = *merge

	var result any

	switch *mode {
	case "request":
		result, err = dumpMessage(message.ParseRequest(data, cfg))
	case "response":
		result, err = dumpMessage(message.ParseResponse(data, cfg))
	case "params":
		result = dumpParams(data)
	default:
		return fmt.Errorf("%w: %s", errUnknownMode, *mode)
	}

	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func dumpMessage(msg *message.Message, err error) (*dump, error) {
	if err != nil {
		return nil, err
	}

	d := &dump{
		Version:  msg.Protocol(),
		Headers:  pairs(msg.Headers),
		Body:     string(msg.Body),
		Warnings: msg.Warnings,
	}

	if msg.IsRequest() {
		d.Type = "request"
		d.Method, d.Path, d.Query = msg.Method, msg.Path, msg.Query
		d.Params = pairs(msg.Params)
	} else {
		d.Type = "response"
		d.StatusCode, d.Reason = msg.Code, msg.Reason
	}

	return d, nil
}

func dumpParams(data []byte) []pair {
	result := make([]pair, 0)
	for name, value := range params.All(data) {
		result = append(result, pair{Key: string(name), Value: string(value)})
	}

	return result
}

func pairs(h *message.Headers) []pair {
	result := make([]pair, 0, h.Len())
	for key, value := range h.All() {
		result = append(result, pair{Key: key, Value: value})
	}

	return result
}
