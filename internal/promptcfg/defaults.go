package promptcfg

// DefaultStore returns the built-in prompt configuration used when no
// prompts file is present. It covers zh_TW, en, and ja.
func DefaultStore() *Store {
	s, err := Parse([]byte(defaultConfigYAML))
	if err != nil {
		// The embedded config is a compile-time constant; failing to
		// parse it is a programming error.
		panic("promptcfg: embedded default config is invalid: " + err.Error())
	}
	return s
}

const defaultConfigYAML = `
version: "1.0"
languages: [zh_TW, en, ja]

system_prompts:
  analyze:
    zh_TW: "你是一個專業的提示工程專家。請分析以下提示並識別可以改進的地方。只輸出 JSON，不要加入其他文字。"
    en: "You are a professional prompt engineering expert. Analyze the following prompt and identify areas for improvement. Output JSON only, with no surrounding text."
    ja: "あなたはプロのプロンプトエンジニアリングの専門家です。以下のプロンプトを分析し、改善できる領域を特定してください。JSONのみを出力してください。"
  optimize:
    zh_TW: "你是一個專業的提示工程專家。請優化以下提示使其更加清晰和有效。只輸出優化後的提示文字。"
    en: "You are a professional prompt engineering expert. Optimize the following prompt to make it clearer and more effective. Output only the optimized prompt text."
    ja: "あなたはプロのプロンプトエンジニアリングの専門家です。以下のプロンプトをより明確で効果的になるように最適化してください。最適化されたプロンプトのみを出力してください。"
  delta:
    zh_TW: "你是一個提示工程助手。請將用戶的修改要求轉換為 JSON 物件，鍵只能是 role、format、detail、scope、reasoning。只輸出 JSON。"
    en: "You are a prompt engineering assistant. Convert the user's modification request into a JSON object whose keys may only be role, format, detail, scope, reasoning. Output JSON only."
    ja: "あなたはプロンプトエンジニアリングのアシスタントです。ユーザーの修正要求を role、format、detail、scope、reasoning のみをキーとする JSON オブジェクトに変換してください。JSONのみを出力してください。"
  chat:
    zh_TW: "你是一個友善的提示工程助手。根據對話歷史回答用戶的問題，簡潔並切題。"
    en: "You are a helpful prompt engineering assistant. Answer the user's question based on the conversation history, concisely and on topic."
    ja: "あなたは親切なプロンプトエンジニアリングのアシスタントです。会話履歴に基づいてユーザーの質問に簡潔に答えてください。"

user_prompts:
  analyze:
    template:
      zh_TW: "請分析以下提示並識別可以改進的區域。{output_format}\n\n提示：\n{prompt}"
      en: "Please analyze the following prompt and identify areas for improvement. {output_format}\n\nPrompt:\n{prompt}"
      ja: "以下のプロンプトを分析し、改善できる領域を特定してください。{output_format}\n\nプロンプト：\n{prompt}"
    output_format:
      zh_TW: "返回 JSON 格式，包含 completeness_score（1-10）、clarity_score（1-10）、structure_score（1-10）、specificity_score（1-10）、missing_elements（字串列表）、improvement_areas（字串列表）、prompt_type（字串）、complexity_level（simple/medium/complex）。"
      en: "Return JSON with completeness_score (1-10), clarity_score (1-10), structure_score (1-10), specificity_score (1-10), missing_elements (list of strings), improvement_areas (list of strings), prompt_type (string), and complexity_level (simple/medium/complex)."
      ja: "completeness_score（1〜10）、clarity_score（1〜10）、structure_score（1〜10）、specificity_score（1〜10）、missing_elements（文字列のリスト）、improvement_areas（文字列のリスト）、prompt_type（文字列）、complexity_level（simple/medium/complex）を含む JSON 形式で返してください。"
  optimize:
    template:
      zh_TW: "請優化以下提示使其更加清晰、具體和有效。保持原始意圖但添加必要的結構和指導。\n\n原始提示：\n{prompt}"
      en: "Please optimize the following prompt to make it clearer, more specific, and more effective. Maintain the original intent but add necessary structure and guidance.\n\nOriginal prompt:\n{prompt}"
      ja: "以下のプロンプトをより明確、具体的、効果的になるように最適化してください。元の意図を維持しながら、必要な構造とガイダンスを追加してください。\n\n元のプロンプト：\n{prompt}"
  delta:
    template:
      zh_TW: "目前的回答設定：\n{answers}\n\n用戶的修改要求：\n{request}\n\n請輸出要變更的欄位。"
      en: "Current answer settings:\n{answers}\n\nUser's modification request:\n{request}\n\nOutput only the fields to change."
      ja: "現在の回答設定：\n{answers}\n\nユーザーの修正要求：\n{request}\n\n変更するフィールドのみを出力してください。"
  chat:
    template:
      zh_TW: "對話歷史：\n{history}\n\n用戶訊息：\n{message}"
      en: "Conversation history:\n{history}\n\nUser message:\n{message}"
      ja: "会話履歴：\n{history}\n\nユーザーメッセージ：\n{message}"

dynamic_questions:
  - type: role
    condition: "completeness_score < 7"
    priority: 10
    input: text
    questions:
      zh_TW: "您希望AI扮演什麼角色？(例如：專家、教師、顧問等)"
      en: "What role should the AI play? (e.g., expert, teacher, consultant)"
      ja: "AIにどのような役割を担ってほしいですか？（例：専門家、教師、コンサルタントなど）"
  - type: format
    condition: "structure_score < 7 OR completeness_score < 5"
    priority: 8
    input: select
    default_key: paragraph
    questions:
      zh_TW: "您希望輸出內容採用什麼格式？"
      en: "What output format do you prefer?"
      ja: "どの出力形式を希望しますか？"
    options:
      - key: json
        labels: {zh_TW: "JSON", en: "JSON", ja: "JSON"}
      - key: list
        labels: {zh_TW: "列表", en: "Bullet list", ja: "リスト"}
      - key: paragraph
        labels: {zh_TW: "段落", en: "Paragraphs", ja: "段落"}
      - key: table
        labels: {zh_TW: "表格", en: "Table", ja: "表"}
  - type: detail
    condition: "clarity_score < 7"
    priority: 6
    input: text
    questions:
      zh_TW: "您希望回答的風格和詳細程度如何？(例如：正式、簡潔、詳細)"
      en: "What tone and level of detail do you want? (e.g., formal, concise, detailed)"
      ja: "どのようなトーンと詳細レベルを希望しますか？（例：フォーマル、簡潔、詳細）"
  - type: scope
    condition: "specificity_score < 7"
    priority: 4
    input: text
    questions:
      zh_TW: "您希望回答聚焦在什麼範圍？(例如：概覽、深入單一主題)"
      en: "What scope should the answer cover? (e.g., broad overview, deep dive on one topic)"
      ja: "回答の範囲はどうしますか？（例：概要、単一トピックの深掘り）"
  - type: reasoning
    condition: "complexity_level in ['complex', '複雜', '複雑', 'high'] OR structure_score < 5"
    priority: 2
    input: bool
    questions:
      zh_TW: "您是否需要模型展示其思考過程？"
      en: "Do you want the model to show its reasoning process?"
      ja: "モデルに推論プロセスを表示させますか？"

optimization_strategies:
  role_definition:
    enabled: true
    template:
      zh_TW: "你是一個{role}。"
      en: "You are a {role}."
      ja: "あなたは{role}です。"
  output_format:
    enabled: true
    template:
      zh_TW: "請以{format}格式提供回答。"
      en: "Please provide your response in {format} format."
      ja: "回答を{format}形式で提供してください。"
  detail_tone:
    enabled: true
    template:
      zh_TW: "請使用{detail}的風格回答。"
      en: "Please answer in a {detail} style."
      ja: "{detail}なスタイルで回答してください。"
  scope_breadth:
    enabled: true
    template:
      zh_TW: "回答範圍：{scope}。"
      en: "Scope of the answer: {scope}."
      ja: "回答の範囲：{scope}。"
  reasoning_steps:
    enabled: true
    template:
      zh_TW: "請一步步思考，顯示你的推理過程。"
      en: "Please think step by step and show your reasoning process."
      ja: "ステップバイステップで考え、推論プロセスを示してください。"

improvement_messages:
  role_added:
    zh_TW: "添加了角色定義"
    en: "Added role definition"
    ja: "役割定義を追加しました"
  format_added:
    zh_TW: "添加了輸出格式指示"
    en: "Added output format instruction"
    ja: "出力形式の指示を追加しました"
  detail_added:
    zh_TW: "添加了風格與詳細程度指示"
    en: "Added tone and detail instruction"
    ja: "トーンと詳細レベルの指示を追加しました"
  scope_added:
    zh_TW: "添加了回答範圍指示"
    en: "Added answer scope instruction"
    ja: "回答範囲の指示を追加しました"
  reasoning_added:
    zh_TW: "添加了思考過程指示"
    en: "Added reasoning process instruction"
    ja: "推論プロセスの指示を追加しました"
  final_improvement:
    zh_TW: "利用AI專家知識進一步優化了提示的結構和清晰度"
    en: "Further optimized the prompt structure and clarity using AI expert knowledge"
    ja: "AI専門家の知識を活用してプロンプトの構造と明確さをさらに最適化しました"

error_messages:
  analysis_error:
    zh_TW: "抱歉，分析過程發生錯誤：{error}"
    en: "Sorry, an error occurred during analysis: {error}"
    ja: "申し訳ございません。分析中にエラーが発生しました：{error}"
  questions_error:
    zh_TW: "抱歉，生成改進問題時發生錯誤：{error}"
    en: "Sorry, an error occurred while generating questions: {error}"
    ja: "申し訳ございません。質問の生成中にエラーが発生しました：{error}"
  optimization_error:
    zh_TW: "抱歉，優化過程發生錯誤：{error}"
    en: "Sorry, an error occurred during optimization: {error}"
    ja: "申し訳ございません。最適化中にエラーが発生しました：{error}"
  chat_error:
    zh_TW: "抱歉，回覆時發生錯誤：{error}"
    en: "Sorry, an error occurred while replying: {error}"
    ja: "申し訳ございません。返信中にエラーが発生しました：{error}"
`
