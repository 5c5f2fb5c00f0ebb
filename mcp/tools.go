package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/HazemIbrahim256/academyreport"
	"github.com/HazemIbrahim256/academyreport/report"
)

// RegisterDefaultTools adds the report rendering tools to the server.
func RegisterDefaultTools(s *Server) {
	s.AddTool(renderPlayerReportTool())
	s.AddTool(renderGroupReportTool())
}

// renderOptionSchema holds the argument properties shared by both render
// tools.
var renderOptionSchema = map[string]interface{}{
	"evaluations": map[string]interface{}{
		"type":        "array",
		"description": "Evaluation records. Each has playerId, evaluatedAt (RFC 3339), optional coach, notes, updatedAt, and a scores object keyed by metric label with values 1-5.",
	},
	"generatedAt": map[string]interface{}{
		"type":        "string",
		"description": "Report generation timestamp, RFC 3339. Defaults to now; pass a fixed value for reproducible output.",
	},
	"fontDir": map[string]interface{}{
		"type":        "string",
		"description": "Directory searched for an Arabic-capable font. Omit to use the default locations.",
	},
	"logoPath": map[string]interface{}{
		"type":        "string",
		"description": "Optional academy logo image for the report header.",
	},
	"letterheadPath": map[string]interface{}{
		"type":        "string",
		"description": "Optional existing PDF whose first page is drawn under every report page.",
	},
	"outputPath": map[string]interface{}{
		"type":        "string",
		"description": "Optional file path to save the PDF. If omitted, returns base64.",
	},
}

func renderPlayerReportTool() Tool {
	props := map[string]interface{}{
		"player": map[string]interface{}{
			"type":        "object",
			"description": "Player record: id, name, and optional groupName, age, phone, photoPath.",
		},
	}
	for k, v := range renderOptionSchema {
		props[k] = v
	}
	return Tool{
		Name:        "render_player_report",
		Description: "Render a bilingual (English/Arabic) evaluation report PDF for a single player. The most recent evaluation is reported; without one the report is marked PRELIMINARY. Returns the PDF as base64 unless outputPath is given.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
			"required":   []string{"player"},
		},
		Handler: handleRenderPlayerReport,
	}
}

func handleRenderPlayerReport(args map[string]interface{}) (ToolResult, error) {
	var p report.Player
	if err := decodeArg(args, "player", &p); err != nil {
		return ToolResult{}, err
	}
	evals, err := decodeEvaluations(args)
	if err != nil {
		return ToolResult{}, err
	}
	opts, err := renderOptions(args)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	res, err := academyreport.RenderPlayerReport(&buf, p, evals, opts...)
	if err != nil {
		return ToolResult{}, fmt.Errorf("rendering report: %w", err)
	}
	return reportResult(args, &buf, res)
}

func renderGroupReportTool() Tool {
	props := map[string]interface{}{
		"group": map[string]interface{}{
			"type":        "object",
			"description": "Group record: id, name, optional coach, and a players array of player records.",
		},
	}
	for k, v := range renderOptionSchema {
		props[k] = v
	}
	return Tool{
		Name:        "render_group_report",
		Description: "Render a group summary PDF with one subsection per player, each carrying the full metric row set. Returns the PDF as base64 unless outputPath is given.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
			"required":   []string{"group"},
		},
		Handler: handleRenderGroupReport,
	}
}

func handleRenderGroupReport(args map[string]interface{}) (ToolResult, error) {
	var g report.Group
	if err := decodeArg(args, "group", &g); err != nil {
		return ToolResult{}, err
	}
	evals, err := decodeEvaluations(args)
	if err != nil {
		return ToolResult{}, err
	}
	opts, err := renderOptions(args)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	res, err := academyreport.RenderGroupReport(&buf, g, evals, opts...)
	if err != nil {
		return ToolResult{}, fmt.Errorf("rendering report: %w", err)
	}
	return reportResult(args, &buf, res)
}

// decodeArg re-marshals a loosely typed argument into its record type.
func decodeArg(args map[string]interface{}, key string, dst interface{}) error {
	v, ok := args[key]
	if !ok {
		return fmt.Errorf("missing %q argument", key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

func decodeEvaluations(args map[string]interface{}) ([]report.Evaluation, error) {
	if _, ok := args["evaluations"]; !ok {
		return nil, nil
	}
	var evals []report.Evaluation
	if err := decodeArg(args, "evaluations", &evals); err != nil {
		return nil, err
	}
	return evals, nil
}

func renderOptions(args map[string]interface{}) ([]academyreport.Option, error) {
	generatedAt := time.Now()
	if s, ok := args["generatedAt"].(string); ok && s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("parsing generatedAt: %w", err)
		}
		generatedAt = t
	}
	opts := []academyreport.Option{academyreport.WithGeneratedAt(generatedAt)}

	if dir, ok := args["fontDir"].(string); ok && dir != "" {
		opts = append(opts, academyreport.WithFontDir(dir))
	}
	if path, ok := args["logoPath"].(string); ok && path != "" {
		opts = append(opts, academyreport.WithLogo(path))
	}
	if path, ok := args["letterheadPath"].(string); ok && path != "" {
		opts = append(opts, academyreport.WithLetterhead(path))
	}
	return opts, nil
}

// reportResult saves or encodes the rendered PDF, noting degraded mode so
// the client can relay the warning.
func reportResult(args map[string]interface{}, buf *bytes.Buffer, res *academyreport.Result) (ToolResult, error) {
	status := fmt.Sprintf("Report rendered: %d pages, %d bytes.", res.Pages, buf.Len())
	if res.Degraded {
		status += " Warning: no Arabic-capable font was found; Arabic text is degraded."
	}

	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return ToolResult{
			Content: []ContentBlock{{
				Type: "text",
				Text: fmt.Sprintf("%s Saved to %s", status, outputPath),
			}},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return ToolResult{
		Content: []ContentBlock{{
			Type: "text",
			Text: fmt.Sprintf("%s Base64 data:\n%s", status, encoded),
		}},
	}, nil
}
