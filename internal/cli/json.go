package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lukasbecvar/file-probe/internal/probe"
)

// jsonCommon holds the leading keys shared by every full report shape. Field
// order is the key order in the output.
type jsonCommon struct {
	Path         string `json:"path"`
	Type         string `json:"type"`
	IsSymlink    bool   `json:"isSymlink"`
	TargetExists bool   `json:"targetExists"`

	// SymlinkTarget is pre-encoded: a JSON string for a resolved target, or
	// an explicit null for a symlink whose resolution returned nothing.
	// Mutually exclusive with SymlinkError; both absent for non-symlinks.
	SymlinkTarget json.RawMessage `json:"symlinkTarget,omitempty"`
	SymlinkError  string          `json:"symlinkError,omitempty"`

	Permissions string `json:"permissions,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Group       string `json:"group,omitempty"`
	LastAccess  string `json:"lastAccess,omitempty"`
	LastModify  string `json:"lastModify,omitempty"`
	LastChange  string `json:"lastChange,omitempty"`
}

// jsonFileReport is the wire form for regular-file targets. The media fields
// always appear, as explicit nulls when the prober had no answer.
type jsonFileReport struct {
	jsonCommon

	SizeBytes      uint64   `json:"sizeBytes"`
	Size           string   `json:"size"`
	ChecksumSha256 string   `json:"checksumSha256"`
	Resolution     *string  `json:"resolution"`
	Metadata       *string  `json:"metadata"`
	Duration       *string  `json:"duration"`
	Warnings       []string `json:"warnings,omitempty"`
}

// jsonDirectoryReport is the wire form for directory targets.
type jsonDirectoryReport struct {
	jsonCommon

	TotalSizeBytes uint64   `json:"totalSizeBytes"`
	TotalSize      string   `json:"totalSize"`
	FileCount      uint64   `json:"fileCount"`
	DirectoryCount uint64   `json:"directoryCount"`
	Warnings       []string `json:"warnings,omitempty"`
}

// jsonBareReport is the wire form for targets with neither detail block,
// such as dangling symlinks and special files.
type jsonBareReport struct {
	jsonCommon

	Warnings []string `json:"warnings,omitempty"`
}

// jsonError is the minimal object emitted for unresolvable targets.
type jsonError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// PrintJSON renders the report as one flat JSON object on a single line.
// Nonexistent targets produce the minimal error form instead of the full
// schema.
func PrintJSON(report *probe.Report, writer io.Writer) error {
	var payload any

	switch {
	case !report.TargetExists && !report.Symlink.IsSymlink:
		payload = jsonError{Path: report.AbsolutePath, Error: "File does not exist"}
	case report.FileDetail != nil:
		payload = buildJSONFileReport(report)
	case report.DirectoryDetail != nil:
		payload = jsonDirectoryReport{
			jsonCommon:     buildJSONCommon(report),
			TotalSizeBytes: report.DirectoryDetail.TotalSizeBytes,
			TotalSize:      report.DirectoryDetail.TotalSizeHuman,
			FileCount:      report.DirectoryDetail.FileCount,
			DirectoryCount: report.DirectoryDetail.DirectoryCount,
			Warnings:       report.Warnings,
		}
	default:
		payload = jsonBareReport{
			jsonCommon: buildJSONCommon(report),
			Warnings:   report.Warnings,
		}
	}

	return writeJSON(payload, writer)
}

// PrintJSONError emits the bare {"error": …} object used when no report
// exists at all, such as for usage errors in JSON mode.
func PrintJSONError(message string, writer io.Writer) error {
	payload := struct {
		Error string `json:"error"`
	}{Error: message}

	return writeJSON(payload, writer)
}

func writeJSON(payload any, writer io.Writer) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

func buildJSONCommon(report *probe.Report) jsonCommon {
	common := jsonCommon{
		Path:         report.AbsolutePath,
		Type:         string(report.Type),
		IsSymlink:    report.Symlink.IsSymlink,
		TargetExists: report.TargetExists,
		Permissions:  report.Permissions,
	}

	if report.Symlink.IsSymlink {
		switch {
		case report.Symlink.Target != "":
			// A string never fails to encode.
			target, _ := json.Marshal(report.Symlink.Target)
			common.SymlinkTarget = target
		case report.Symlink.Err != "":
			common.SymlinkError = report.Symlink.Err
		default:
			common.SymlinkTarget = json.RawMessage("null")
		}
	}

	if report.Ownership != nil {
		common.Owner = report.Ownership.Owner
		common.Group = report.Ownership.Group
	}

	if report.Timestamps != nil {
		common.LastAccess = report.Timestamps.Access
		common.LastModify = report.Timestamps.Modify
		common.LastChange = report.Timestamps.Change
	}

	return common
}

func buildJSONFileReport(report *probe.Report) jsonFileReport {
	detail := report.FileDetail

	return jsonFileReport{
		jsonCommon:     buildJSONCommon(report),
		SizeBytes:      detail.SizeBytes,
		Size:           detail.SizeHuman,
		ChecksumSha256: detail.Checksum,
		Resolution:     nullable(detail.Resolution),
		Metadata:       nullable(detail.Metadata),
		Duration:       nullable(detail.Duration),
		Warnings:       report.Warnings,
	}
}

// nullable maps an unset field to an explicit JSON null.
func nullable(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
