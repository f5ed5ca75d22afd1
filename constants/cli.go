package constants

// Commands
const (
	CmdRender   = "render"
	CmdSave     = "save"
	CmdHTML     = "html"
	CmdPublish  = "publish"
	CmdValidate = "validate"
	CmdFmt      = "fmt"
	CmdServe    = "serve"
)

// Short descriptions
const (
	DescRoot     = "Build Mermaid flowcharts from chart documents"
	DescRender   = "Print the Mermaid source for a chart document"
	DescSave     = "Write the Mermaid source to a .mmd file"
	DescHTML     = "Write a standalone HTML preview page"
	DescPublish  = "Put the rendered chart into the configured blob store"
	DescValidate = "Validate a chart document (parse + schema)"
	DescFmt      = "Reformat a chart document as YAML"
	DescServe    = "Serve the HTTP preview API"
)

// Messages
const (
	MsgSaved      = "Wrote %s"
	MsgPublished  = "Published %s"
	MsgValidateOK = "Validation OK: chart document is valid"
)
