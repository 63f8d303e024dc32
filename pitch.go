// Package pitch drafts cold-outreach emails from business websites. It
// fetches a site's HTML, extracts the readable content, and asks a language
// model to draft a short automation-services pitch grounded in that content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package pitch
