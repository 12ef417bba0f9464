package models

// DocumentType represents the kind of medical document a patient uploads
type DocumentType string

const (
	DocumentLabReport    DocumentType = "LAB_REPORT"
	DocumentPrescription DocumentType = "PRESCRIPTION"
	DocumentXRay         DocumentType = "XRAY"
	DocumentMRIScan      DocumentType = "MRI_SCAN"
	DocumentCTScan       DocumentType = "CT_SCAN"
	DocumentUltrasound   DocumentType = "ULTRASOUND"
	DocumentECG          DocumentType = "ECG"
	DocumentOther        DocumentType = "OTHER"
)

// DocumentTypes lists every accepted document type in display order.
var DocumentTypes = []DocumentType{
	DocumentLabReport,
	DocumentPrescription,
	DocumentXRay,
	DocumentMRIScan,
	DocumentCTScan,
	DocumentUltrasound,
	DocumentECG,
	DocumentOther,
}

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	for _, known := range DocumentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DefaultDocumentDescription is stored when the uploader leaves the description empty.
const DefaultDocumentDescription = "N/A"

// Document is an uploaded file kept inline with its patient.
// DataURL holds the content as a base64 data URL; documents never change after upload.
type Document struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	UploadDate  string       `json:"uploadDate"`
	Type        DocumentType `json:"type"`
	Description string       `json:"description"`
	DataURL     string       `json:"dataUrl"`
}
