// Package httpserver exposes the development login endpoint over HTTP/JSON.
//
// The wire contract mirrors what the mobile client expects: a successful
// POST /api/account/login returns {"message":"successfull","result":
// {"token":"..."}} and any credential failure returns 401 with a JSON
// message. GET /ping answers 200 for reachability probes.
package httpserver
