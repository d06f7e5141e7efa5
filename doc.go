// Package controlapi implements the voice-agent control API, the HTTP
// control plane in front of a LiveKit deployment.
//
// The service provides:
//   - Access token issuing (join-only and full-capability playground tokens)
//   - Room and participant management over the LiveKit RoomService API
//   - An in-memory registry mapping rooms to voice-agent system prompts
//   - Signed webhook ingestion for room and participant lifecycle events
//   - A composite initialize-room flow (create room, attach agent, issue token)
package controlapi
