package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultTimeout   = 60 // seconds
	defaultRequestID = 1
)

// Request is a JSON-RPC request to send.
type Request struct {
	Method  string
	Params  interface{}
	Timeout int
	ID      int
}

// NewRequest creates a request with the default timeout and ID.
func NewRequest(method string, params ...interface{}) *Request {
	return &Request{
		Method:  method,
		Params:  params,
		Timeout: defaultTimeout,
		ID:      defaultRequestID,
	}
}

// NewRequestWithTimeoutAndID creates a request with the given timeout
// (seconds) and request ID.
func NewRequestWithTimeoutAndID(timeout, id int, method string, params ...interface{}) *Request {
	return &Request{
		Method:  method,
		Params:  params,
		Timeout: timeout,
		ID:      id,
	}
}

// RPCPost posts a JSON-RPC request and unmarshals the result.
func RPCPost(result interface{}, url, method string, params ...interface{}) error {
	req := NewRequest(method, params...)
	return RPCPostRequest(url, req, result)
}

// RPCPostWithTimeoutAndID posts a JSON-RPC request with an explicit
// timeout (seconds) and request ID.
func RPCPostWithTimeoutAndID(result interface{}, timeout, id int, url, method string, params ...interface{}) error {
	req := NewRequestWithTimeoutAndID(timeout, id, method, params...)
	return RPCPostRequest(url, req, result)
}

// RequestBody is the JSON-RPC 2.0 request envelope.
type RequestBody struct {
	Version string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int         `json:"id"`
}

// JSONRPCError is the error member of a JSON-RPC response. The code
// is kept so that callers can classify server-side failures.
type JSONRPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (err *JSONRPCError) Error() string {
	return fmt.Sprintf("json-rpc error %d, %s", err.Code, err.Message)
}

type jsonrpcResponse struct {
	Version string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// RPCPostRequest posts the request and unmarshals the result. A
// JSON-RPC level failure is returned as *JSONRPCError.
func RPCPostRequest(url string, req *Request, result interface{}) error {
	reqBody := &RequestBody{
		Version: "2.0",
		Method:  req.Method,
		Params:  req.Params,
		ID:      req.ID,
	}
	resp, err := HTTPPost(url, reqBody, nil, nil, req.Timeout)
	if err != nil {
		return err
	}
	return getResultFromJSONResponse(result, resp)
}

func getResultFromJSONResponse(result interface{}, resp *http.Response) error {
	defer func() {
		_ = resp.Body.Close()
	}()
	const maxReadContentLength int64 = 1024 * 1024 * 10 // 10M
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadContentLength))
	if err != nil {
		return fmt.Errorf("read body error: %v", err)
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("wrong response status %v. message: %v", resp.StatusCode, string(body))
	}

	var jsonResp jsonrpcResponse
	err = json.Unmarshal(body, &jsonResp)
	if err != nil {
		return fmt.Errorf("unmarshal body error: %v", err)
	}
	if jsonResp.Error != nil {
		return jsonResp.Error
	}
	if result == nil {
		return nil
	}
	err = json.Unmarshal(jsonResp.Result, &result)
	if err != nil {
		return fmt.Errorf("unmarshal result error: %v", err)
	}
	return nil
}
