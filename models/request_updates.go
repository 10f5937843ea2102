// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// Uploader is implemented by request params that may carry files destined
// for a multipart upload. UploadFiles wires every uploadable file to a part
// name and returns the part-name-to-file mapping; an empty map means the
// request can go out as plain JSON.
type Uploader interface {
	UploadFiles() map[string]*InputFile
}

// addUpload wires f under the given part name when it needs uploading.
func addUpload(files map[string]*InputFile, name string, f *InputFile) {
	if f != nil && f.NeedsUpload() {
		f.AttachName = name
		files[name] = f
	}
}

// GetUpdatesParams are the parameters of getUpdates.
type GetUpdatesParams struct {
	// Offset must be greater by one than the highest update_id among
	// previously received updates. Negative values address the queue from
	// its end.
	Offset int64 `json:"offset,omitempty"`
	// Limit caps the number of updates retrieved, 1-100. Defaults to 100.
	Limit int `json:"limit,omitempty"`
	// Timeout in seconds for long polling. 0 means short polling, which
	// should be used for testing only.
	Timeout int `json:"timeout,omitempty"`
	// AllowedUpdates lists the update types to receive. An empty list
	// selects all types except chat_member. Omitted, the previous setting
	// is kept.
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// SetWebhookParams are the parameters of setWebhook.
type SetWebhookParams struct {
	// URL is the HTTPS url to send updates to. An empty string removes the
	// webhook integration.
	URL         string     `json:"url"`
	Certificate *InputFile `json:"certificate,omitempty"`
	IPAddress   string     `json:"ip_address,omitempty"`
	// MaxConnections caps simultaneous HTTPS connections for update
	// delivery, 1-100. Defaults to 40.
	MaxConnections     int      `json:"max_connections,omitempty"`
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	DropPendingUpdates bool     `json:"drop_pending_updates,omitempty"`
	// SecretToken is echoed back by Telegram in the
	// X-Telegram-Bot-Api-Secret-Token header of every webhook request.
	SecretToken string `json:"secret_token,omitempty"`
}

func (p *SetWebhookParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "certificate", p.Certificate)
	return files
}

// DeleteWebhookParams are the parameters of deleteWebhook.
type DeleteWebhookParams struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}
