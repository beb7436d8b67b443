// Package realtime provides the upstream transport to the OpenAI Realtime
// API over a WebSocket connection.
//
// A Client wraps exactly one duplex connection. Construct it from an
// explicit Config, call Connect, then use the send methods and the Events
// iterator concurrently:
//
//	client := realtime.NewClient(realtime.Config{APIKey: key})
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Disconnect()
//
//	if err := client.ConfigureSession(cfg); err != nil {
//	    return err
//	}
//
//	for event, err := range client.Events() {
//	    if err != nil {
//	        return err
//	    }
//	    switch event.Type {
//	    case realtime.EventTypeResponseAudioDelta:
//	        play(event.Delta)
//	    }
//	}
//
// The Events sequence ends when the connection closes or errors. A Client
// is not restartable; a fresh connection requires a new instance.
package realtime
