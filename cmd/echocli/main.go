package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/rkbarth/catalogdb/bootstrap"
	"github.com/rkbarth/catalogdb/configuration"
)

func main() {

	c := configuration.Default()
	err := configuration.Read(c)
	if err != nil {
		log.Fatalln("ERROR:", err.Error())
	}

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stdout, c, jsontext.WithIndent("    "))
		fmt.Println()
	}

	start, stop, err := bootstrap.Echo(c, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalln("ERROR:", err.Error())
	}

	err = start(os.Args[1:])
	stop()
	if err != nil {
		log.Fatalln("ERROR:", err.Error())
	}
}
