// Package routes composes a route table (route name -> handler) into a single
// mountable http.Handler.
//
// A table like
//
//	routes.Table{
//		"hello": routes.Text("hello world"),
//		"hi":    routes.Text("hi world"),
//	}
//
// passed to Configure yields a unit that, mounted at a base path, serves
// GET <base>/hello and GET <base>/hi. Paths with no registered name fall
// through to the host router's not-found handler.
package routes
