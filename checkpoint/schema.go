package checkpoint

// Schema of the checkpoint file. Genesis accounts are loaded from the file with the same schema.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "aicredit accounts checkpoint",
  "type": "object",
  "properties": {
    "version": {
      "type": "string",
      "const": "https://aicredit.dev/checkpoint.schema.json.1.0"
    },
    "data": {
      "type": "object",
      "properties": {
        "id": {"type": "string"},
        "slot": {"type": "integer", "minimum": 0},
        "stateRoot": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
        "accounts": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "key": {"type": "string", "pattern": "^[1-9A-HJ-NP-Za-km-z]{32,44}$"},
              "owner": {"type": "string", "pattern": "^[1-9A-HJ-NP-Za-km-z]{32,44}$"},
              "lamports": {"type": "integer", "minimum": 0},
              "executable": {"type": "boolean"},
              "data": {"type": "string", "pattern": "^[1-9A-HJ-NP-Za-km-z]*$"}
            },
            "required": ["key", "owner", "lamports", "executable", "data"],
            "additionalProperties": false
          }
        }
      },
      "required": ["accounts"]
    }
  },
  "required": ["version", "data"]
}`
