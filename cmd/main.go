package main

import "github.com/adanyl0v/go-todo-api/internal/app"

//	@title			Todo API
//	@version		1.0.0
//	@description	API documentation for your Todo app
//	@BasePath		/

//	@tag.name			Tasks
//	@tag.description	API for managing tasks

func main() {
	a := app.New()
	a.MustReadConfig()
	a.MustInitLogger()

	a.MustConnectStorage()
	defer a.DisconnectStorage()

	a.MustListenAndServeHTTP()
}
