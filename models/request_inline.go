// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// AnswerInlineQueryParams are the parameters of answerInlineQuery.
type AnswerInlineQueryParams struct {
	InlineQueryID string `json:"inline_query_id"`
	// Results holds at most 50 results for the query.
	Results []InlineQueryResult `json:"results"`
	// CacheTime in seconds the result may be cached server-side. Defaults
	// to 300.
	CacheTime         *int   `json:"cache_time,omitempty"`
	IsPersonal        bool   `json:"is_personal,omitempty"`
	NextOffset        string `json:"next_offset,omitempty"`
	SwitchPMText      string `json:"switch_pm_text,omitempty"`
	SwitchPMParameter string `json:"switch_pm_parameter,omitempty"`
}
