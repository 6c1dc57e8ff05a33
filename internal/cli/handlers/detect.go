// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import "github.com/janderssonse/tradein/internal/sniffer"

// Detect classifies client and prints the sniffer message.
func (h *BaseHandler) Detect(client string) sniffer.Result {
	result := sniffer.Detect(client)
	output := h.GetOutput()

	switch {
	case output.JSON:
		output.JSONResult("success", map[string]any{
			"kind":    result.Kind.String(),
			"brand":   result.Brand(),
			"message": result.Message(),
		})
	case output.Plain:
		output.PlainKeyValue("kind", result.Kind.String())
		output.PlainKeyValue("brand", result.Brand())
	default:
		output.Result(result.Message())

		if result.Detected() {
			output.Progressf("Suggested brand: %s", result.Brand())
		}
	}

	return result
}
