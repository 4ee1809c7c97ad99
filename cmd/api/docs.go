// Package main Lumina CRM API
//
// Lead and pipeline management API for small sales teams. Leads, tasks,
// lists, a kanban pipeline board, dashboard metrics, and CSV import/export.
//
// Terms Of Service:
// https://lumina-crm.io/terms
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api/v1
// Version: 0.1.0
// Contact: Lumina Support <support@lumina-crm.io> https://lumina-crm.io
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// Security:
// - bearerAuth: []
//
// SecurityDefinitions:
// bearerAuth:
//   type: apiKey
//   name: Authorization
//   in: header
//   description: JWT token in format "Bearer {token}"
//
// swagger:meta
package main
