package sections

// Prompts and notices shown by the section editors
const (
	MsgNetrcCurrent   = "🔐 Current netrc configuration found:"
	MsgNetrcConfigure = "🧾 Do you want to configure netrc machines?"
	MsgNetrcSkipped   = "⏭️ Skipping netrc configuration, preserving current values."
	MsgNetrcAdding    = "➕ Adding a new machine:"
	MsgNetrcAnother   = "➕ Do you want to add another netrc machine?"
	MsgNetrcURL       = "🌐 Enter URL"
	MsgNetrcUsername  = "👤 Enter Username"
	MsgNetrcToken     = "🔑 Enter Token"

	MsgProxyCurrent = "🌐 Current proxy configuration found:"
	MsgProxyEnable  = "🕸️ Enable proxy?"
	MsgProxySkipped = "⏭️ Skipping proxy configuration, preserving current values."
	MsgProxyHTTP    = "📡 HTTP Proxy"
	MsgProxyHTTPS   = "🔒 HTTPS Proxy"
	MsgProxyNo      = "🚫 No Proxy"
)
