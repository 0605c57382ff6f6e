// Package schema defines the JSON documents exchanged with the clinic API.
package schema
