// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qnexus/models"
)

// WriteJSON serializes data and writes it with statusCode and a JSON content
// type. On marshaling failure it responds with 500 and returns the error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the wire form of err: its taxonomy code and message.
func WriteError(w http.ResponseWriter, err error, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{
		Code:    models.ErrorCode(err),
		Message: err.Error(),
	}, statusCode)
}
