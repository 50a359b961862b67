// Package fprime loads the F Prime deployment artifacts the generator reads:
// the JSON topology dictionary (type definitions, telemetry channels and
// commands) and the XML packet-layout catalog.
//
// The loaders only check structure (required fields, parseable ids). Type
// resolution happens in the analyze package.
//
// Dictionary excerpt:
//
//	{
//	  "metadata": {"deploymentName": "Ref"},
//	  "typeDefinitions": [
//	    {"kind": "array", "qualifiedName": "Ref.SignalSet", "size": 4,
//	     "elementType": {"name": "F32", "kind": "float", "size": 32}}
//	  ],
//	  "telemetryChannels": [
//	    {"name": "Ref.SG1.Output", "type": {"name": "Ref.SignalSet", "kind": "qualifiedIdentifier"}}
//	  ],
//	  "commands": [
//	    {"name": "Ref.cmdDisp.CMD_NO_OP_STRING", "opcode": 1282,
//	     "formalParams": [{"name": "arg1", "type": {"name": "string", "kind": "string", "size": 40}}]}
//	  ]
//	}
//
// Packets excerpt:
//
//	<packets name="RefPackets" namespace="Ref">
//	  <packet name="CDH" id="1" level="1">
//	    <channel name="cmdDisp.CommandsDispatched"/>
//	  </packet>
//	  <ignore>
//	    <channel name="cmdDisp.CommandsDropped"/>
//	  </ignore>
//	</packets>
package fprime
