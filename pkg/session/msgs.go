package session

// Session progress messages
const (
	MsgStart          = "🚀 Starting chezmoi configurator...\n"
	MsgLoadedExisting = "📂 Loaded existing configuration."
	MsgConfigMissing  = "⚠️ Configuration file not found."
	MsgTemplateCopied = "🧪 Template copied to configuration file."
	MsgStartEmpty     = "🆕 No template found. Starting with an empty configuration."
	MsgSavedFormat    = "✅ Configuration updated successfully and saved to 📄 %s\n"
	MsgDone           = "🎉 Done! Have a great day ✨"
)
