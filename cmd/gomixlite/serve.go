/*
File    : gomixlite/cmd/gomixlite/serve.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/gomixlite/repl"
)

// serve listens on port and hands each accepted connection its own REPL
// session (and therefore its own eval.Evaluator and global
// environment.Context), so concurrent clients never observe each other's
// variables — the one piece of concurrency in this binary; the Language
// itself stays single-threaded per spec.md §5.
func serve(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("GoMixLite REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(newStreamHost(conn, conn), conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
