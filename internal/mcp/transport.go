package mcp

// This file documents the transport used by the MCP server.
// mcp-go implements newline-delimited JSON-RPC over stdio in
// server.StdioServer; Server.Serve only binds it to the given streams
// and routes its error log through zap. Stdout must carry protocol
// frames only, so nothing in this package writes to it directly.
