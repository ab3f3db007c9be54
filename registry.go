package conf

import (
	"github.com/0xalexb/hjarta-conf/handler"
	inihandler "github.com/0xalexb/hjarta-conf/handler/ini"
	jsonhandler "github.com/0xalexb/hjarta-conf/handler/json"
	luahandler "github.com/0xalexb/hjarta-conf/handler/lua"
	xmlhandler "github.com/0xalexb/hjarta-conf/handler/xml"
	yamlhandler "github.com/0xalexb/hjarta-conf/handler/yaml"
)

// DefaultRegistry returns a registry with every built-in handler, in lookup order:
// Lua, INI, JSON, XML, YAML. JSON and YAML can write; the others only parse.
func DefaultRegistry() *handler.Registry {
	return handler.NewRegistry(
		luahandler.NewHandler(),
		inihandler.NewHandler(),
		jsonhandler.NewHandler(),
		xmlhandler.NewHandler(),
		yamlhandler.NewHandler(),
	)
}
