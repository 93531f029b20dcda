/*
Copyright (c) 2024 Dell Inc., or its subsidiaries. All Rights Reserved.

Licensed under the Mozilla Public License Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://mozilla.org/MPL/2.0/


Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package idrac

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned on malformed caller input, e.g. a fully
	// qualified URL where a Redfish path was expected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnexpectedContentType is returned when the controller answered a
	// successful request with a non-JSON body.
	ErrUnexpectedContentType = errors.New("unexpected content type")

	// ErrActionNotFound is returned when a resource does not advertise the
	// requested action in its Actions descriptor.
	ErrActionNotFound = errors.New("action not found")

	// ErrUnknownParameter is returned when an action parameter has no
	// AllowableValues companion field on the descriptor.
	ErrUnknownParameter = errors.New("unknown action parameter")

	// ErrInvalidParameterValue is returned when a parameter value is outside
	// the set currently advertised by the controller.
	ErrInvalidParameterValue = errors.New("parameter value not allowed")

	// ErrOperationInProgress is returned when a volume already reports a
	// pending operation and a new one was requested.
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrJobSchedulingFailed is returned when a scheduled action did not
	// yield a job id through the Location header.
	ErrJobSchedulingFailed = errors.New("job scheduling failed")

	// ErrTimeout is returned by the wait helpers when the requested state
	// was not reached within the given timeout.
	ErrTimeout = errors.New("timed out waiting for requested state")
)

// ExtendedMessage is one entry of the vendor error list returned by the
// Redfish API under error.@Message.ExtendedInfo.
type ExtendedMessage struct {
	MessageID string
	Message   string
}

// OperationFailedError is returned when the controller answered a request
// with an HTTP error status. Errors carries the vendor message list in
// server-given order; it is empty when the body was absent or unparsable.
type OperationFailedError struct {
	Method     string
	Path       string
	StatusCode int
	Errors     []ExtendedMessage
}

func (e *OperationFailedError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Errors[0].Message)
	}
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

func newOperationFailedError(method, path string, statusCode int, body []byte) *OperationFailedError {
	opErr := &OperationFailedError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
	}

	var payload struct {
		Error struct {
			ExtendedInfo []struct {
				MessageID string `json:"MessageId"`
				Message   string `json:"Message"`
			} `json:"@Message.ExtendedInfo"`
		} `json:"error"`
	}

	// A missing or malformed body still yields a usable error, just
	// without the vendor message list.
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		for _, info := range payload.Error.ExtendedInfo {
			opErr.Errors = append(opErr.Errors, ExtendedMessage{
				MessageID: info.MessageID,
				Message:   info.Message,
			})
		}
	}

	return opErr
}
