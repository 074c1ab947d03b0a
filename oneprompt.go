// Package oneprompt provides a structured, XML-based prompt templating system.
//
// A prompt document declares its metadata, typed variables, reusable parts and
// a template body in one XML file:
//
//	<prompt>
//	  <metadata>
//	    <title>Greeting</title>
//	  </metadata>
//	  <variables>
//	    <var name="name" required="true"/>
//	    <var name="tone" required="false">friendly</var>
//	  </variables>
//	  <part name="formal">Good day to you.</part>
//	  <template>Hello {{name}}! <if var="tone" equals="formal" show="formal"/></template>
//	</prompt>
//
// # Basic Usage
//
// Create an engine, parse a document and render it with input values:
//
//	engine := oneprompt.MustNew()
//	doc, err := engine.Parse(source)
//	output, err := engine.Render(doc, oneprompt.InputValues{"name": "Alice"})
//	// output: "Hello Alice!"
//
// RenderSource combines both steps for one-shot rendering.
//
// # Template Syntax
//
// Variable tokens use double-brace delimiters:
//
//	{{variable_name}}
//
// Conditional directives select a named part based on a variable's resolved
// value:
//
//	<if var="tone" equals="formal" show="formal_greeting" else="casual_greeting"/>
//
// The else attribute is optional. When the condition selects no part, the
// directive renders as an empty string.
//
// # Validation
//
// Validate checks a document's structural rules: a non-empty title, unique
// declared variables covering every template token, non-empty defaults on
// optional variables, unique part names and well-formed directives. Render
// validates before resolving, so invalid documents never render.
//
// # Storage
//
// Engines optionally attach a PromptStorage backend for persisting documents
// by name. Memory, filesystem and PostgreSQL backends are built in, selected
// through the driver registry:
//
//	storage, _ := oneprompt.OpenStorage("filesystem", "/var/lib/oneprompt")
//	engine := oneprompt.MustNew(oneprompt.WithStorage(storage))
//
//	engine.SavePrompt(ctx, "greeting", source)
//	output, _ := engine.RenderStored(ctx, "greeting", oneprompt.InputValues{"name": "Alice"})
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := oneprompt.New(
//	    oneprompt.WithLogger(logger),
//	    oneprompt.WithStorage(storage),
//	)
package oneprompt
