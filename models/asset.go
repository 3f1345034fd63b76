package models

// UploadedAsset describes one stored file from an upload batch. Original
// and Mime are echoed from the client and never trusted for storage
// decisions; StoredAs is the server-generated name under the upload
// directory.
type UploadedAsset struct {
	Original string `json:"original"`
	StoredAs string `json:"stored_as"`
	URL      string `json:"url"`
	Mime     string `json:"mime"`
}

// UploadResult summarizes a completed upload batch.
type UploadResult struct {
	Count int             `json:"count"`
	Files []UploadedAsset `json:"files"`
}
